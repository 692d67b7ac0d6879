// Package cli implements the rulekit command-line interface.
//
// # Commands
//
// check - validate records read from a YAML or JSON file:
//
//	rulekit check --kind register --file signup.yaml --total 100 --max 100
//	rulekit check --kind product --file products.json --many --lang id --format json
//
// Supported kinds are login, register, category and product. With --many the
// file holds a list of records which are validated concurrently. Registration
// checks read the current user count from the configured capacity source
// (memory, redis or postgres); --total and --max override it with fixed values.
//
// demo - run a fixed set of sample records through every schema and print
// the outcome of each.
//
// check prints a report in YAML (default) or JSON and exits with status 1
// when any record is invalid. demo always exits with status 0.
//
// With --metrics FILE both commands also write the validation counters and
// durations of the run in the Prometheus text format.
//
// # Configuration
//
// Settings come from RULEKIT_* environment variables, optionally read from
// .env files given with --env-file. Flags override the environment.
package cli
