package main

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	logs "github.com/danmuck/smplog"

	"github.com/danmuck/zab_state/src/persistence"
	"github.com/danmuck/zab_state/src/zab"
)

func runEpochs(ps *persistence.PersistentState) error {
	ack, err := ps.AckEpoch()
	if err != nil {
		return err
	}
	proposed, err := ps.ProposedEpoch()
	if err != nil {
		return err
	}
	fmt.Printf("Acknowledged epoch: %d\n", ack)
	fmt.Printf("Proposed epoch:     %d\n", proposed)
	if ack == persistence.EpochUnset && proposed == persistence.EpochUnset {
		fmt.Println("(no epoch recorded yet)")
	}
	return nil
}

func runConfig(ps *persistence.PersistentState) error {
	conf, err := ps.LastSeenConfig()
	if err != nil {
		return err
	}
	if conf == nil {
		fmt.Println("No cluster configuration recorded.")
		return nil
	}

	keys := make([]string, 0, len(conf))
	for k := range conf {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("Cluster configuration (%d entries):\n", len(conf))
	for _, k := range keys {
		fmt.Printf("    %s = %q\n", k, conf[k])
	}
	return nil
}

func runSnapshot(ps *persistence.PersistentState) error {
	file, err := ps.SnapshotFile()
	if err != nil {
		return err
	}
	if file == "" {
		fmt.Println("No snapshot installed.")
		return nil
	}
	zxid, err := ps.SnapshotZxid()
	if err != nil {
		return err
	}
	fmt.Printf("Snapshot file: %s\n", filepath.Base(file))
	fmt.Printf("Valid through: %s\n", zxid)
	return nil
}

func runLog(ps *persistence.PersistentState) error {
	it, err := ps.Log().Iterator(zab.Zxid{Epoch: 0, Counter: 0})
	if err != nil {
		return err
	}
	defer it.Close()

	count := 0
	for {
		txn, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		fmt.Printf("    %s type=%d body=%d bytes\n", txn.Zxid, txn.Type, len(txn.Body))
		count++
	}
	fmt.Printf("Transaction log: %d record(s), latest %s\n", count, ps.Log().LatestZxid())
	return nil
}

func runFresh(ps *persistence.PersistentState) error {
	fresh, err := ps.IsEmpty()
	if err != nil {
		return err
	}
	if fresh {
		fmt.Println("Fresh node: no prior state in directory.")
	} else {
		fmt.Println("Recovering node: prior state present.")
	}
	return nil
}

func runView(ps *persistence.PersistentState) error {
	logs.Debugf("runView(%s)", ps.Dir())
	fmt.Printf("State directory: %s\n\n", ps.Dir())
	steps := []func(*persistence.PersistentState) error{
		runFresh, runEpochs, runConfig, runSnapshot, runLog,
	}
	for _, step := range steps {
		if err := step(ps); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}
