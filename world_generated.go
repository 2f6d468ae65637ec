package ecs

import "sync"

// ForEach1 visits every entity carrying c1, across every chunk whose
// archetype is a superset of {c1}, chunk by chunk in ascending id order.
func ForEach1[T1 any](w *World, c1 Component[T1], f func(*T1)) {
	target, _ := NewArchetype(c1)
	for _, chunk := range w.matchingChunks(target) {
		col1, _ := GetColumn(chunk, c1)
		for i := range col1 {
			f(&col1[i])
		}
	}
}

// ForEach2 visits every entity carrying both c1 and c2.
func ForEach2[T1, T2 any](w *World, c1 Component[T1], c2 Component[T2], f func(*T1, *T2)) {
	target, _ := NewArchetype(c1, c2)
	for _, chunk := range w.matchingChunks(target) {
		col1, _ := GetColumn(chunk, c1)
		col2, _ := GetColumn(chunk, c2)
		for i := range col1 {
			f(&col1[i], &col2[i])
		}
	}
}

// ForEach3 visits every entity carrying c1, c2, and c3.
func ForEach3[T1, T2, T3 any](w *World, c1 Component[T1], c2 Component[T2], c3 Component[T3], f func(*T1, *T2, *T3)) {
	target, _ := NewArchetype(c1, c2, c3)
	for _, chunk := range w.matchingChunks(target) {
		col1, _ := GetColumn(chunk, c1)
		col2, _ := GetColumn(chunk, c2)
		col3, _ := GetColumn(chunk, c3)
		for i := range col1 {
			f(&col1[i], &col2[i], &col3[i])
		}
	}
}

// ForEach4 visits every entity carrying c1, c2, c3, and c4.
func ForEach4[T1, T2, T3, T4 any](w *World, c1 Component[T1], c2 Component[T2], c3 Component[T3], c4 Component[T4], f func(*T1, *T2, *T3, *T4)) {
	target, _ := NewArchetype(c1, c2, c3, c4)
	for _, chunk := range w.matchingChunks(target) {
		col1, _ := GetColumn(chunk, c1)
		col2, _ := GetColumn(chunk, c2)
		col3, _ := GetColumn(chunk, c3)
		col4, _ := GetColumn(chunk, c4)
		for i := range col1 {
			f(&col1[i], &col2[i], &col3[i], &col4[i])
		}
	}
}

// ForEachParallel1 visits every entity carrying c1 the same way ForEach1
// does, but splits each matching chunk's column independently into
// shards (default Config.defaultParallelShards when shards <= 0) and
// runs the shards across goroutines. f must be safe to call
// concurrently; shards never overlap within a chunk, but two shards from
// different chunks may run at the same time.
func ForEachParallel1[T1 any](w *World, c1 Component[T1], shards int, f func(*T1)) {
	if shards <= 0 {
		shards = Config.defaultParallelShards
	}
	target, _ := NewArchetype(c1)
	var cols [][]T1
	for _, chunk := range w.matchingChunks(target) {
		col, _ := GetColumn(chunk, c1)
		if len(col) > 0 {
			cols = append(cols, col)
		}
	}

	var wg sync.WaitGroup
	for s := 0; s < shards; s++ {
		shard := s
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, col := range cols {
				n := len(col)
				start := shard * n / shards
				end := (shard + 1) * n / shards
				for i := start; i < end; i++ {
					f(&col[i])
				}
			}
		}()
	}
	wg.Wait()
}

// ForEachParallel2 is ForEachParallel1 over a pair of columns.
func ForEachParallel2[T1, T2 any](w *World, c1 Component[T1], c2 Component[T2], shards int, f func(*T1, *T2)) {
	if shards <= 0 {
		shards = Config.defaultParallelShards
	}
	target, _ := NewArchetype(c1, c2)
	type pair struct {
		a []T1
		b []T2
	}
	var cols []pair
	for _, chunk := range w.matchingChunks(target) {
		colA, _ := GetColumn(chunk, c1)
		colB, _ := GetColumn(chunk, c2)
		if len(colA) > 0 {
			cols = append(cols, pair{colA, colB})
		}
	}

	var wg sync.WaitGroup
	for s := 0; s < shards; s++ {
		shard := s
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, p := range cols {
				n := len(p.a)
				start := shard * n / shards
				end := (shard + 1) * n / shards
				for i := start; i < end; i++ {
					f(&p.a[i], &p.b[i])
				}
			}
		}()
	}
	wg.Wait()
}
