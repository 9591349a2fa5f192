// Package srs implements the cram spaced repetition scheduler.
//
// The algorithm is deliberately simple: intervals grow multiplicatively with a
// per-card ease factor and are capped at the cram horizon (ten days by
// default), so every card keeps cycling within the study window instead of
// escaping to month-long intervals the way a calibrated SRS would allow.
//
//	sched := srs.NewScheduler(srs.SchedulerConfig{})
//	state := srs.NewState(time.Now())
//	state = sched.Review(state, srs.Good, time.Now())
package srs
