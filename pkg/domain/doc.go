/*
Package domain contains the core models for nodewire's socket management.

It defines the shapes shared by every layer: Sockets with their fixed-role
classification, connection events raised by the host canvas, FormatString
node configs, and saved template state. This package is kept pure and free
of I/O so the reconciliation logic stays testable in isolation.

# Key Entities

  - Socket / Output: one input or output pin, with role and type tag.
  - ConnectionEvent / LinkInfo: a single connect or disconnect on the canvas.
  - NodeConfig: the parser's answer for a template (inputs and outputs).
  - SavedState: the persisted form of a FormatString node.
*/
package domain
