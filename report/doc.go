// Package report implements spec §4.F/§6.3-6.4's structured output records
// (Solution, Report), a content fingerprint of the parsed instance used to
// verify determinism across runs (spec §8 property 5), JSON codecs, and an
// optional append-only run history store.
package report
