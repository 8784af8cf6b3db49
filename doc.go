// Package nodewire provides the client-side behavior for two families of
// custom nodes in a node-based visual workflow editor: FormatString nodes
// whose sockets mirror a text template parsed by a companion server, and
// dynamic multi-input nodes (RandomChoice, ToJSON, Switch) whose input list
// grows and shrinks as wires come and go.
//
// The host canvas runtime is reached only through the capability interfaces
// in pkg/ports, so the library carries no dependency on any concrete GUI
// toolkit. The core reconciliation state machine lives in internal/reconcile
// and is driven through Engine.NodeCreated.
//
// A minimal integration:
//
//	engine := nodewire.New(graph)
//	rec, err := engine.NodeCreated(nodewire.NodeRandomChoice, host)
//	if err != nil { ... }
//	// on every canvas connect/disconnect for this node:
//	rec.OnConnectionsChange(ev)
//	// while deserializing a saved graph:
//	rec.Bulk(func() { restoreLinks() })
//
// The FormatString workflow is split between pkg/formatstring (template
// parsing, config build, client-side sync) and internal/adapters/http (the
// chi server and the matching client).
package nodewire
