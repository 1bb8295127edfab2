package main

// AnimationFps is the global number that says how fast animations run.
// The Update() method runs at 60 FPS (ebitengine's default). Animations don't
// need to be as detailed.
const AnimationFps = 30

// AnimationFramesPerImage is the number we actually use in many computations so
// just set it here.
const AnimationFramesPerImage = 60 / AnimationFps

// Animation is a fade that goes through a fixed number of images, from fully
// visible to invisible. The images are not bitmaps, each one is just a level
// of opacity. It is cheap to copy this struct.
type Animation struct {
	NImgs    int64
	ImgIndex int64
	FrameIdx int64
}

func NewAnimation(nImgs int64) (a Animation) {
	a.NImgs = max(nImgs, 1)
	return
}

func (a *Animation) Step() {
	a.FrameIdx++
	if a.FrameIdx == AnimationFramesPerImage {
		a.FrameIdx = 0
		a.ImgIndex++
	}
}

// Alpha returns the opacity of the current image, between 0 and 255.
func (a *Animation) Alpha() uint8 {
	if a.ImgIndex >= a.NImgs {
		return 0
	}
	return uint8(255 * (a.NImgs - a.ImgIndex) / a.NImgs)
}

func (a *Animation) TotalNFrames() int64 {
	return AnimationFramesPerImage * a.NImgs
}
