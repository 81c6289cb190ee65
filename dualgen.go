// dualgen.go - concurrent dual-generator rendering for the A/B
// comparison CSV mode.
//
// ref and test share no mutable state - each Oscillator is a private,
// flat value owned by exactly one goroutine - so rendering both
// concurrently needs no locking, only a barrier at the end to collect
// both sample streams before zipping them into rows.
package main

import "golang.org/x/sync/errgroup"

type compareRow struct {
	phi    UQ016
	s1, s2 SQ015
}

// dualGenerate renders total samples from ref and test concurrently
// and zips them by index into compareRow. ref and test must already
// share the same freq/phi for the phi column to be meaningful.
func dualGenerate(ref, test *Oscillator, total uint) ([]compareRow, error) {
	phis := make([]UQ016, total)
	s1s := make([]SQ015, total)
	s2s := make([]SQ015, total)

	var g errgroup.Group

	g.Go(func() error {
		for i := uint(0); i < total; i++ {
			phis[i] = ref.Phi()
			s1s[i] = ref.Output()
			ref.Step()
		}
		return nil
	})

	g.Go(func() error {
		for i := uint(0); i < total; i++ {
			s2s[i] = test.Output()
			test.Step()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := make([]compareRow, total)
	for i := uint(0); i < total; i++ {
		rows[i] = compareRow{phi: phis[i], s1: s1s[i], s2: s2s[i]}
	}
	return rows, nil
}
