/*
Package formatstring implements both halves of the FormatString workflow.

The server half (Service) parses templates into node configs and persists
node state; the client half (Syncer) keeps a host node's sockets in step
with the parser's answer. Templates use either simple {name} substitution
or a Jinja-style {{ name }} syntax; ExtractKeys recognizes both.
*/
package formatstring
