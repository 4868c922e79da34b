// Package main provides the pershing CLI: a place-and-router for gate-level
// netlists that emits 3D redstone-style conductor layouts.
//
// # Overview
//
// Pershing reads a BLIF gate-level netlist and a structured cell-library
// document, then drives four engines in sequence:
//
//   - Placer: simulated-annealing placement of cell instances into a 3D
//     voxel volume
//   - Router: minimum-spanning-tree net decomposition, Lee maze routing,
//     and rip-up-and-reroute to clear proximity violations
//   - Extractor: tokenizes each routed net into wire/repeater/via
//     primitives, inserting repeaters to hold redstone signal strength
//     above its floor, and paints the result into a dense block-ID layout
//   - Timing: walks the driver-to-driven DAG to report combinational
//     critical-path delay
//
// # Commands
//
//	pershing place <netlist.blif> --library PATH [--placements PATH] [--seed N]
//	pershing route --placements PATH --library PATH [--routings PATH]
//	pershing extract --placements PATH --routings PATH --library PATH [--world PATH]
//	pershing timing --placements PATH --routings PATH --library PATH
//	pershing run <netlist.blif> --library PATH [--output-dir PATH] [--world PATH]
//	pershing clean [--output-dir PATH]
//
// Global flags:
//
//	-v, --verbose              enable verbose output for debugging
//	-j, --workers string       number of concurrent workers ('half', 'full', or an integer)
//	-w, --working-dir string   working directory for relative paths
//
// The --world flag names a target world directory for an external
// voxel-world writer; pershing's own responsibility ends at the dense
// block-ID array it writes to extraction.json.
package main
