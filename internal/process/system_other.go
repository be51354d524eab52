//go:build !windows

package process

// unsupportedSystem fails every call. Other platforms have kill -STOP and
// kill -CONT and no ntdll.
type unsupportedSystem struct{}

func newSystem() System {
	return unsupportedSystem{}
}

func (unsupportedSystem) Resolve(string) (EntryPoint, error) {
	return nil, ErrUnsupported
}

func (unsupportedSystem) OpenProcess(uint32) (Handle, error) {
	return nil, ErrUnsupported
}

func (unsupportedSystem) SnapshotThreads() (ThreadSnapshot, error) {
	return nil, ErrUnsupported
}

func (unsupportedSystem) OpenThread(uint32) (ThreadHandle, error) {
	return nil, ErrUnsupported
}
