package config

var DefaultConfig string = `
logging:
  console-level: 5
  file-level: -1

parse:
  companies:
    - AIC
    - WN
    - BXV
    - EA
    - PERSONAL

limits:
  max-value: 1.0e+12
  max-effort: 10000
`
