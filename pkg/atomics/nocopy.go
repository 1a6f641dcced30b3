package atomics

// noCopy triggers go vet's copylocks check when a containing struct is
// copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
