package script

import (
	"sync"
	"testing"
)

func TestExecutionPoolGetAndRelease(t *testing.T) {
	pool := NewExecutionPool(NewVM())

	taken := make([]*PooledVM, numVMInPool)
	for i := 0; i < numVMInPool; i++ {
		taken[i] = pool.Get()
		if taken[i] == nil {
			t.Fatal("expected a pooled vm")
		}
	}

	for _, vm := range taken {
		vm.Release()
	}

	if vm := pool.Get(); vm == nil {
		t.Fatal("expected a pooled vm after release")
	}
}

func TestExecutionPoolClonesShareDefinitions(t *testing.T) {
	root := NewVM()
	if _, _, err := root.RunWithContext("function addOne(x){ return x + 1; }"); err != nil {
		t.Fatal(err)
	}

	pool := NewExecutionPool(root)
	vm := pool.Get()
	defer vm.Release()

	_, val, err := vm.RunWithContext("addOne(41)")
	if err != nil {
		t.Fatal(err)
	}
	n, err := val.ToInteger()
	if err != nil {
		t.Fatal(err)
	} else if n != 42 {
		t.Fatalf("expected 42, got %d", n)
	}
}

func TestExecutionPoolConcurrentRuns(t *testing.T) {
	pool := NewExecutionPool(NewVM())

	var wg sync.WaitGroup
	errs := make(chan error, numVMInPool*4)

	for i := 0; i < numVMInPool*4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			vm := pool.Get()
			defer vm.Release()

			_, _, err := vm.RunWithContext("Mat([[1, 2], [3, 4]]).Norm()")
			if err != nil {
				errs <- err
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatal(err)
	}
}
