package script

const numVMInPool = 8

// PooledVM is only used to wrap the vm object and give a Release
// method the caller can defer in order to free the VM itself
// transparently.
type PooledVM struct {
	*VM
	parent *ExecutionPool
	index  int
}

// Release adds this object back to the free list of the pool.
func (w *PooledVM) Release() {
	w.parent.freeWay <- w.index
}

// ExecutionPool is a pool of clones of a single VM that will be used
// to scale script execution to different goroutines without locking
// one single shared VM.
type ExecutionPool struct {
	root    *VM
	clones  []*PooledVM
	freeWay chan int
}

// NewExecutionPool creates an ExecutionPool object for the given VM.
func NewExecutionPool(vm *VM) *ExecutionPool {
	p := &ExecutionPool{
		root:    vm,
		clones:  make([]*PooledVM, numVMInPool),
		freeWay: make(chan int, numVMInPool),
	}

	for i := 0; i < numVMInPool; i++ {
		p.clones[i] = &PooledVM{
			VM:     p.root.Clone(),
			parent: p,
			index:  i,
		}
		// presignal a free object so the very first
		// loop won't wait
		p.freeWay <- i
	}

	return p
}

// Get will wait until a VM object in the pool is signaled as free by
// whoever was using it and then return the first signaled free VM
// instance.
func (p *ExecutionPool) Get() *PooledVM {
	for freeIndex := range p.freeWay {
		return p.clones[freeIndex]
	}

	return nil
}
