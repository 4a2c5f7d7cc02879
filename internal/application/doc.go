// Package application wires the package store, the workout dispatcher, metrics
// and logging into the batch driver that prints one summary line per package.
package application
