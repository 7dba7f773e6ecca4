// Package adventure is a pseudo-3D theme-park scene simulator.
//
// A park is a set of animated 2D line-art entities (rides, guests, a guest
// spawner) placed in a world plane. Each tick a [Camera] projects every
// entity's current [Frame] with a simple perspective model, fakes volume by
// extruding back and side faces, sorts entities back to front and hands the
// resulting screen-space batches to a [Renderer].
//
// The core has no display dependency. A window backend built on
// [Ebitengine] lives in adventure/ebitenview; [HeadlessRenderer] serves
// tests and scripted runs.
//
// # Quick start
//
//	engine := adventure.NewEngine(adventure.DefaultEngineConfig(), renderer)
//	engine.SetLogger(logger)
//	if err := engine.LoadScenario(scn); err != nil {
//		return err
//	}
//	return engine.Run(ctx)
//
// Ready-made rides, backgrounds and guests are in adventure/assets, and
// scenario documents (YAML, JSON or TOML) are read by adventure/scenario.
//
// # Geometry
//
// A [Frame] is an ordered list of [Draw] primitives, each either a [Segment]
// or a [Fill]. An [Animation] loops over frames at its own rate, independent
// of the engine's tick rate. Styles are validated on construction; see
// [NewLineStyle] and [NewFill].
//
// # Entities
//
// An [Entity] binds a shared Animation to a position, a physical [Size] and a
// [Behavior] hook. Behaviors read time only through the [Clock] they are
// given, so runs are reproducible under a [StepClock].
//
// # Ticks
//
// [Engine.Tick] advances the clock, applies input to the camera, updates
// the background and every entity, commits the add/remove mutations queued
// during the update, then projects, depth sorts and renders. Entities added
// during a tick are first updated on the next one.
//
// [Ebitengine]: https://ebitengine.org
package adventure
