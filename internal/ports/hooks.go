package ports

// SpinInfo describes one spin attempt to lifecycle hooks.
type SpinInfo struct {
	ID     string
	Prize  string
	Winner string
	Forced bool
}

// Hooks are the lifecycle callbacks a host supplies at construction.
// Nil fields are skipped. All hooks fire synchronously on the spin's
// goroutine; hosts wanting async behavior dispatch themselves.
type Hooks struct {
	// OnSpinStart fires after preconditions pass, before the reel is
	// populated. Hosts use it to disable controls.
	OnSpinStart func(SpinInfo)
	// OnSpinEnd fires once per spin attempt, on natural completion
	// or forced stop.
	OnSpinEnd func(SpinInfo)
	// OnNameListChanged fires when the name list is replaced. Hosts
	// use it to cancel lingering win-celebration effects.
	OnNameListChanged func()
}
