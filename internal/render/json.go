package render

import (
	"fmt"

	"github.com/Jeffail/gabs/v2"

	"github.com/vk/hepnos-wizard/internal/hepnos"
)

const indent = "    "

// JSON renders doc as indented JSON.
func JSON(doc *hepnos.Document) (string, error) {
	c, err := Container(doc)
	if err != nil {
		return "", err
	}
	return c.StringIndent("", indent), nil
}

// Container builds the JSON tree of doc.
func Container(doc *hepnos.Document) (*gabs.Container, error) {
	var b builder
	root := gabs.New()

	b.set(root, doc.Margo.Address, "margo", "mercury", "address")
	b.array(root, "margo", "argobots", "pools")
	for _, p := range doc.Margo.Argobots.Pools {
		pc := gabs.New()
		b.set(pc, p.Name, "name")
		b.set(pc, p.Kind, "kind")
		b.set(pc, p.Access, "access")
		b.append(root, pc, "margo", "argobots", "pools")
	}
	b.array(root, "margo", "argobots", "xstreams")
	for _, xs := range doc.Margo.Argobots.XStreams {
		xc := gabs.New()
		b.set(xc, xs.Name, "name")
		b.set(xc, xs.Scheduler.Type, "scheduler", "type")
		b.array(xc, "scheduler", "pools")
		for _, pool := range xs.Scheduler.Pools {
			b.append(xc, gabs.Wrap(pool), "scheduler", "pools")
		}
		b.append(root, xc, "margo", "argobots", "xstreams")
	}
	b.set(root, doc.Margo.ProgressPool, "margo", "progress_pool")
	b.set(root, doc.Margo.RPCPool, "margo", "rpc_pool")

	b.object(root, "libraries")
	for name, lib := range doc.Libraries {
		b.set(root, lib, "libraries", name)
	}

	b.array(root, "ssg")
	for _, g := range doc.Groups {
		gc := gabs.New()
		b.set(gc, g.Name, "name")
		b.set(gc, g.Bootstrap, "bootstrap")
		b.set(gc, g.GroupFile, "group_file")
		b.set(gc, g.Pool, "pool")
		b.set(gc, g.Swim.Disabled, "swim", "disabled")
		b.append(root, gc, "ssg")
	}

	b.array(root, "providers")
	for _, p := range doc.Providers {
		b.append(root, b.provider(p), "providers")
	}

	if b.err != nil {
		return nil, fmt.Errorf("failed to build JSON document: %w", b.err)
	}
	return root, nil
}

// builder records the first error hit while filling containers.
type builder struct {
	err error
}

func (b *builder) provider(p hepnos.Provider) *gabs.Container {
	pc := gabs.New()
	b.set(pc, p.Name, "name")
	b.set(pc, p.Type, "type")
	b.set(pc, p.Pool, "pool")
	b.set(pc, p.ProviderID, "provider_id")

	if p.Kind != hepnos.StorageProvider {
		b.object(pc, "config")
		return pc
	}

	b.array(pc, "config", "databases")
	for _, db := range p.Databases {
		dc := gabs.New()
		b.set(dc, db.Name, "name")
		b.set(dc, db.Type, "type")
		b.object(dc, "config")
		for k, v := range db.Config {
			b.set(dc, v, "config", k)
		}
		b.append(pc, dc, "config", "databases")
	}
	return pc
}

func (b *builder) set(c *gabs.Container, value any, path ...string) {
	if _, err := c.Set(value, path...); err != nil && b.err == nil {
		b.err = err
	}
}

func (b *builder) array(c *gabs.Container, path ...string) {
	if _, err := c.Array(path...); err != nil && b.err == nil {
		b.err = err
	}
}

func (b *builder) object(c *gabs.Container, path ...string) {
	if _, err := c.Object(path...); err != nil && b.err == nil {
		b.err = err
	}
}

func (b *builder) append(c *gabs.Container, child *gabs.Container, path ...string) {
	if err := c.ArrayAppend(child.Data(), path...); err != nil && b.err == nil {
		b.err = err
	}
}
