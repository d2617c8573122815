// Command hexctl automates inventory bookkeeping against the local game
// client: shard statistics, duplicate-shard disenchanting, collection
// statistics, settings backup/restore, and profile icon randomization.
//
// Every subcommand is a short, linear run: discover the client through its
// lockfile, issue a handful of authenticated requests, aggregate locally, and
// print a table (or JSON with --json).
package main
