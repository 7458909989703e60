package model

// Version is the release version, overridden at build time with
// -ldflags "-X termfolio/internal/model.Version=...".
var Version = "0.3.0"
