// Package keg parses KEGG hierarchy flat files (".keg", e.g. ko00001.keg)
// into a table of KO identifiers with their classification.
//
// A .keg file starts with a fixed 5-line header followed by records tagged
// with a level letter:
//
//	A09100 Metabolism
//	B
//	B  09101 Carbohydrate metabolism
//	C    00010 Glycolysis / Gluconeogenesis [PATH:ko00010]
//	D      K00844  HK; hexokinase [EC:2.7.1.1]
//
// Only B (Group), C (Classification) and D (KO) records are consumed.
// Parse accumulates them into an ordered Group -> Classification -> KO
// hierarchy, Flatten turns it into entries and Group merges entries that
// share a (KO, Group) pair.
package keg
