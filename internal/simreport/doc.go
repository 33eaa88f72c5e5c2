// Package simreport parses DOE-2 simulation output (.SIM) documents and
// extracts the structured tables embedded in their report sections.
//
// A .SIM document is a fixed-format, line-oriented text report. Sections are
// announced by "REPORT- <code>" header lines; seven report codes are
// understood (BEPS, PV-A, SV-A, PS-F, SS-A, SS-B, LV-D), each with its own
// table schema and its own row-recognition rules.
//
// # Parse pipeline
//
// Parsing a document runs in three phases:
//
//  1. Pre-scan: for report codes whose tables are allocated per entity
//     (PS-F meters, SS-A/SS-B systems), the document headers are scanned
//     once to discover entity names in first-appearance order.
//  2. Main scan: a single forward pass over the lines. A dispatcher tracks
//     the active report code and delegates every data line to that code's
//     handler, which classifies the line and upserts rows into the tables.
//  3. Post-processing: derived metrics (pump W/GPM, chiller COP and kW/ton,
//     fan W/CFM, thermal efficiencies, window-to-wall ratio) are appended
//     to the finished tables, and PRIMARY EQUIPMENT is partitioned into
//     BOILERS and CHILLERS.
//
// Basic usage:
//
//	doc, err := simreport.ReadDocument("tower.SIM")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rs, err := simreport.NewParser(nil).Parse(doc)
//
// Cell values stay raw strings inside a Table; numeric coercion happens at
// read time and falls back to the original text when a value does not parse
// as a number.
package simreport
