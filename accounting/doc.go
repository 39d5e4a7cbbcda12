// Package accounting aggregates the simulation's economic outcome and
// exposes it both as the fixed six-line report text and as an
// in-process Prometheus registry for diagnostic dumps. No HTTP exporter is
// wired: the registry is gathered straight to text, honoring the
// simulation's no-network-operation non-goal.
package accounting
