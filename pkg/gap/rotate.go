package gap

// rotFunc maps a probe offset (xoffs, yoffs) relative to a candidate pixel
// (x, y) into absolute window coordinates, one per octant orientation. Gap
// search always probes "upward" in the rotated frame; rotating the frame
// itself is what lets one probe loop cover all four octants.
type rotFunc func(x, y, xoffs, yoffs int) (int, int)

func topRight(x, y, xoffs, yoffs int) (int, int) { return x + xoffs, y + yoffs }
func topCentr(x, y, xoffs, yoffs int) (int, int) { return x - yoffs, y - xoffs }
func botCentr(x, y, xoffs, yoffs int) (int, int) { return x - yoffs, y + xoffs }
func botRight(x, y, xoffs, yoffs int) (int, int) { return x + xoffs, y - yoffs }
