package fleet

import "sync"

// DirectoryCmd is run by the manager goroutine with exclusive access to the directory.
type DirectoryCmd struct {
	Exec func(dir *Directory)
}

// Mgr owns the directory and serializes every access to it, so a scan over
// all cars never interleaves with a change to any single car.
type Mgr struct {
	cmds      chan DirectoryCmd
	done      chan struct{}
	closeOnce sync.Once
}

// StartMgr starts the manager goroutine.
func StartMgr(dir *Directory) *Mgr {
	mgr := &Mgr{
		cmds: make(chan DirectoryCmd),
		done: make(chan struct{}),
	}
	go func() {
		defer close(mgr.done)
		for cmd := range mgr.cmds {
			cmd.Exec(dir)
		}
	}()
	return mgr
}

// Exec runs fn on the manager goroutine and waits for it to return.
// Cars reached through dir must not be kept after fn returns.
func (mgr *Mgr) Exec(fn func(dir *Directory)) {
	reply := make(chan struct{})
	mgr.cmds <- DirectoryCmd{
		Exec: func(dir *Directory) {
			defer close(reply)
			fn(dir)
		},
	}
	<-reply
}

// Close stops the manager goroutine. Exec must not be called afterwards.
func (mgr *Mgr) Close() {
	mgr.closeOnce.Do(func() { close(mgr.cmds) })
	<-mgr.done
}
