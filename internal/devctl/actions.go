package devctl

// Indirection layer to allow stubbing in tests

var (
	fnCheckDependencies = checkDependencies
	fnSetupEnvironment  = setupEnvironment

	fnStartBackend  = startBackend
	fnStartFrontend = startFrontend
	fnStartService  = startService

	fnRunSession = runSession

	fnProbe        = probe
	fnProcessStats = processStats
)
