package controller

// #region check-backlash

// checkBacklash runs after any trust-building interaction on a part. Every
// protector of that part which has not consented to help loses half the
// gain, then rolls for a backlash: triggered when the draw lands below
// 1 − newTrust/2. The halved-trust asymmetry is deliberate and must not be
// "corrected" to 1 − trust: recorded sessions depend on it.
//
// When several protectors trigger on the same interaction, one is drawn at
// random as the primary; the rest ride along as extras for the pending
// blend queue.
func (c *Controller) checkBacklash(protecteeID string, gain float64) *BacklashDirective {
	if gain <= 0 {
		return nil
	}

	var triggered []string
	for _, protectorID := range c.parts.ProtectorsOf(protecteeID) {
		if c.parts.HasConsentedToHelp(protectorID) {
			continue
		}
		c.parts.AddTrust(protectorID, -gain/2)
		newTrust := c.parts.Trust(protectorID)
		if c.rng.Random("backlash_check:"+protectorID) < 1-newTrust/2 {
			triggered = append(triggered, protectorID)
		}
	}

	if len(triggered) == 0 {
		return nil
	}

	primary := triggered[0]
	var extras []string
	if len(triggered) > 1 {
		idx := c.rng.PickIndex(len(triggered), "backlash_primary")
		primary = triggered[idx]
		extras = append(triggered[:idx:idx], triggered[idx+1:]...)
	}

	return &BacklashDirective{
		ProtectorID: primary,
		ProtecteeID: protecteeID,
		Extras:      extras,
	}
}

// #endregion check-backlash
