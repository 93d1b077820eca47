// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scheduler triggers periodic recalculation.

When -recalc-at is configured, the host process schedules a daily rerun of
the recalculation driver at the given HH:MM local time:

	s, err := scheduler.New(cfg.RecalcTZ)
	err = s.Schedule(cfg.RecalcAt, func() { driver.Run() })
	s.Start()

Because the driver publishes each snapshot in a single transaction, a
scheduled rerun is safe while requests are being served.
*/
package scheduler
