package handler

type ContextKey string

var (
	ControlCtx ContextKey = "control"
)

// controlInfo 是 control 中间件解析出的控件及其绑定的图表
type controlInfo struct {
	ID     string
	Output string
}
