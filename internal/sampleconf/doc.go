// Package sampleconf holds a unit generated by propgen and checked in, so
// the generated runtime is compiled and exercised by its tests.
//
// Regenerate after changing the unit template:
//
//	go generate ./internal/sampleconf
package sampleconf

//go:generate go run go.eggybyte.com/egg/propgen/cmd/propgen generate -r app.properties --package sampleconf --class Config --env-key SAMPLECONF_ENV --env-default test --resource-dir testdata
