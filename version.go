package nodewire

// Version is the current library version, overridable at build time.
var Version = "0.1.0"
