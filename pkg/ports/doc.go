/*
Package ports defines the driven ports (interfaces) for nodewire.

These interfaces decouple the socket reconciliation and template sync logic
from the concrete host runtime and storage backends.

# Key Interfaces

  - NodeHost: the capability surface of one node on the host canvas.
  - Graph: node/output lookup by ID, used by type propagation.
  - TemplateService: the client-side view of the template parser.
  - ConfigStore / StateStore: server-side persistence of configs and state.
*/
package ports
