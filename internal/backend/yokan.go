package backend

// Yokan registers the backends shipped with the Yokan key-value service.
type Yokan struct{}

var yokanBackends = []Backend{
	{Name: "map"},
	{Name: "unordered_map"},
	{Name: "set"},
	{Name: "unordered_set"},
	{Name: "leveldb", DiskBacked: true},
	{Name: "rocksdb", DiskBacked: true},
	{Name: "berkeleydb", DiskBacked: true},
	{Name: "lmdb", DiskBacked: true},
	{Name: "gdbm", DiskBacked: true},
	{Name: "tkrzw", DiskBacked: true},
	{Name: "unqlite", DiskBacked: true},
}

// Register implements Module.
func (y *Yokan) Register(r *Registry) error {
	for _, b := range yokanBackends {
		if err := r.Register(b); err != nil {
			return err
		}
	}
	return nil
}
