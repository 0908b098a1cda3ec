// Package broadcast orchestrates a full email broadcast run.
//
// A run walks a fixed sequence of states:
//
//	Idle → HealthChecked → Loaded → Validated → Previewed → Confirmed → Sending → Completed
//
// with Failed reachable from any state on an unrecoverable error (load
// failure, failed health gate, operator declining a confirmation). The
// runner drives the roster loader once, the validator once, then iterates
// the validated recipients strictly in order: personalize, send, record an
// outcome, pause for the configured delay. A single recipient's send
// failure never aborts the run; it is recorded and the loop continues.
//
// # Input
//
// Operator interaction goes through the InputSource interface. The runner
// never reads stdin directly, so the same flow runs interactively (via
// TerminalInput) or scripted (via ScriptedInput, or pre-supplied Params in
// non-interactive mode) without behavior change.
//
// # Usage
//
//	client := appsscript.New(apiCfg)
//	input := broadcast.NewTerminalInput(os.Stdin, os.Stdout)
//	runner := broadcast.NewRunner(client, client, input, cfg,
//		broadcast.WithLogger(log),
//		broadcast.WithMailerConfig(mailerCfg),
//	)
//
//	result, err := runner.Run(ctx, broadcast.Params{})
//
// # Report
//
// Outcomes are held in memory for the run's duration and optionally flushed
// to a CSV report at the end. A report write failure is surfaced to the
// operator but does not invalidate the in-memory outcomes or the deliveries
// that already happened.
package broadcast
