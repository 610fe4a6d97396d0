// Package commands defines the foodfinder CLI over the restaurant directory.
//
// Commands
//
//   - provinces     List provinces, optionally by region
//   - province      Show a province and filter its restaurants
//   - restaurant    Show one restaurant
//   - popular       List the top recommended restaurants
//   - search        Run a global search
//   - go            Search and open the first hit
//   - interactive   Live search over stdin, debounced
//
// The root command loads the dataset once before any subcommand runs, from
// --data or the DATASET_* environment.
package commands
