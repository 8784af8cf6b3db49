/*
Package reconcile implements the dynamic-socket state machine.

Every connect or disconnect on the host canvas raises one ConnectionEvent;
Reconciler.OnConnectionsChange runs a fixed sequence of idempotent passes
against the node's socket model:

 1. vacuous events (no link info, output side, control socket) are skipped
 2. type propagation on the first concrete connection
 3. shrink: drop the disconnected socket (suppressed in bulk mode)
 4. renumber: <prefix><k> names, capped at the non-seed count
 5. grow: keep exactly one open trailing placeholder
 6. selector widget bounds sync
 7. seed socket pinned to the tail

The package talks to the host only through ports.NodeHost, so it carries no
dependency on any concrete canvas runtime.
*/
package reconcile
