package cubic

// ambientOcclusion implements the https://0fps.net/2013/07/03/ambient-occlusion-for-minecraft-like-worlds/
// formula: 0 is the darkest, 3 is no occlusion at all.
func ambientOcclusion(side1, side2, corner bool) uint8 {
	if side1 && side2 {
		return 0
	}
	return 3 - b2u(side1) - b2u(side2) - b2u(corner)
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
