package bigcalc

// Version is the release tag reported by the version subcommand.
const Version = "1.1.0"
