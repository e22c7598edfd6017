// SPDX-License-Identifier: MIT

// Package mazepath generates rectangular grid mazes and solves them with a
// family of interchangeable search strategies.
//
// What is mazepath?
//
//	A small library plus a CLI and an HTTP API that bring together:
//		• Maze model: walls, passages, start/end markers, glyph round-trip
//		• Generator: randomized depth-first carving with extra openings
//		• Priority queue: binary min-heap with a caller-supplied ordering
//		• Search: bfs, dfs, dijkstra, bestFirst, depthLimited,
//		  bidirectional and greedyBestFirst behind one entry point
//		• Instrumentation: per-run event stream, logrus sink
//
// Everything is organized under these subpackages:
//
//	maze/       grid model, connectivity helpers and the generator
//	pqueue/     generic binary min-heap
//	pathfind/   search engine, budgets and the event stream
//	render/     plain and colored terminal output, comparison table
//	config/     environment and .env configuration
//	api/        gin router and the solve controller
//	cmd/        the mazepath command
//
// Quick ASCII example:
//
//	#######
//	#S**..#
//	###*###
//	#..**E#
//	#######
//
//	a 7x5 maze with the path found by bfs marked with '*'.
//
//	go run ./cmd/mazepath -complexity easy -algorithm bidirectional
package mazepath
