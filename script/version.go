package script

// Version is the version of the matscript engine.
const Version = "1.0.0"
