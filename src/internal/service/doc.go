// Package service runs the connectivity monitor: the poll loop that sits
// between the CLI/API layer and the status evaluator.
//
// # Monitor
//
// Monitor polls on a fixed interval, serialises polls with forced
// reconnects so the WLAN session sequence never runs twice at once, keeps a
// Snapshot of the latest outcome, and fires hooks on status transitions and
// reconnect attempts.
//
// # Example Usage
//
//	monitor := service.NewMonitor(probe, reconnector, hookRunner, 10*time.Second)
//	go monitor.Run(ctx)
//
//	snap := monitor.Snapshot()
//	fmt.Println(snap.Status)
package service
