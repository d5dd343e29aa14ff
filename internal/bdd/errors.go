package bdd

import "errors"

// Sentinel errors returned by Manager construction and mutation, mirroring
// the engine-failure taxonomy of §7: ROBDD initialization, variable
// creation, and AND construction can each fail, and the caller must abort
// rather than proceed with a partially built diagram.
var (
	errVarRange    = errors.New("bdd: variable index out of range")
	errNotInit     = errors.New("bdd: manager has not been initialized with a non-negative variable count")
	errConstructed = errors.New("bdd: node construction did not return a valid handle")
	errLiveHandles = errors.New("bdd: manager closed while acquired handles are still live")
)
