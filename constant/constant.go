package constant

const (
	WINDOW_TITLE = "aqpaint"

	// Each channel of a brush color is COLOR_STEP * n for n in [1, COLOR_LEVELS].
	COLOR_STEP   = 32
	COLOR_LEVELS = 7

	EXIT_OK              = 0
	EXIT_INIT_FAILURE    = 1
	EXIT_VIDEO_MODE_FAIL = 2

	EVENT_QUEUE_SIZE = 256
	TPS              = 60
)
