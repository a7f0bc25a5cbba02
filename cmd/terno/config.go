package main

// EnvPrefix is prepended to every configuration key read from the
// environment, e.g. TERNO_LOG_LEVEL for log.level.
const EnvPrefix = "TERNO"

// KeyConfig names an explicit config file (TERNO_CONFIG).
const KeyConfig = "config"
