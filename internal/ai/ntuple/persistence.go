package ntuple

import (
	"bufio"
	"encoding/binary"
	"os"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// The weight file is little-endian binary: a uint32 count of tables, then for
// each table a uint64 entry count followed by the raw float32 entries.

// Save writes the weight tables to path. Save followed by Load reproduces
// bit-identical tables.
func (n *Network) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create weight file %q", path)
	}
	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, uint32(len(n.tables))); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "failed to write weight file %q", path)
	}
	for _, table := range n.tables {
		if err := binary.Write(w, binary.LittleEndian, uint64(len(table))); err != nil {
			_ = f.Close()
			return errors.Wrapf(err, "failed to write weight file %q", path)
		}
		if err := binary.Write(w, binary.LittleEndian, table); err != nil {
			_ = f.Close()
			return errors.Wrapf(err, "failed to write weight file %q", path)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "failed to flush weight file %q", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close weight file %q", path)
	}
	klog.V(1).Infof("Saved %d weight tables to %q", len(n.tables), path)
	return nil
}

// Load replaces the network tables with the ones stored at path. The stored
// table count and sizes are checked against the fixed pattern scheme:
// continuing to train on mismatched weights would silently corrupt them.
func (n *Network) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open weight file %q", path)
	}
	defer func() { _ = f.Close() }()

	r := bufio.NewReader(f)
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return errors.Wrapf(err, "failed to read weight file %q", path)
	}
	if count != NumPatterns {
		return errors.Errorf("weight file %q holds %d tables, the pattern scheme requires %d", path, count, NumPatterns)
	}
	tables := make([][]float32, count)
	for i := range tables {
		var size uint64
		if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
			return errors.Wrapf(err, "failed to read weight file %q (table %d)", path, i)
		}
		if size != uint64(TableSize) {
			return errors.Errorf("weight file %q table %d holds %d entries, the pattern scheme requires %d", path, i, size, TableSize)
		}
		table := make([]float32, size)
		if err := binary.Read(r, binary.LittleEndian, table); err != nil {
			return errors.Wrapf(err, "failed to read weight file %q (table %d)", path, i)
		}
		tables[i] = table
	}
	n.tables = tables
	klog.V(1).Infof("Loaded %d weight tables from %q", len(n.tables), path)
	return nil
}
