// Package io provides JSON import and export of layout snapshots.
//
// # Overview
//
// The portable format is the snapshot itself: the grid configuration plus
// one record per placed item, exactly as persisted by the storage backends.
// A layout exported here can be re-imported on another machine, or handed to
// external tools that generate or edit layouts.
//
// # JSON Format
//
//	{
//	  "id": "a5e2...",
//	  "name": "morning",
//	  "config": {
//	    "bounds": {"columns": 8, "rows": 0},
//	    "cell_size": 60,
//	    "spacing": 8
//	  },
//	  "items": [
//	    {
//	      "id": "w1",
//	      "title": "Clock",
//	      "category": "clock",
//	      "footprint": {"width": 2, "height": 2},
//	      "position": {"row": 0, "col": 0},
//	      "enabled": true
//	    }
//	  ]
//	}
//
// A bounds.rows of 0 means unbounded rows.
//
// # Import
//
// Use [ImportJSON] to read a snapshot from a file path, or [ReadJSON] to
// read from any io.Reader. Imported snapshots are validated against the
// layout rules (bounds, overlaps, duplicate ids) before being accepted, so a
// hand-edited file that places two widgets on the same cell is rejected with
// a message naming the offending items.
//
// # Export
//
// Use [ExportJSON] to write a snapshot to a file, or [WriteJSON] to write to
// any io.Writer. Export preserves every field, so export followed by import
// reproduces the layout exactly.
package io
