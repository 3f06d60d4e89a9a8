// meta/meta.go
package meta

// EVALUATOR names the evaluator used when none is configured.
const EVALUATOR = "mobility"

// SEARCH_DEPTH of 0 lets the search deepen with the move count.
const SEARCH_DEPTH = 0

// OUTPUT_DIR is where experiment results go by default.
const OUTPUT_DIR = "experiments"

// CONCURRENCY is the default number of experiment games played at once.
const CONCURRENCY = 1
