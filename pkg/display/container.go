// Package display 提供显示树基础设施
//
// 显示树由 Container 节点组成，负责屏幕坐标、父子组合、激活生命周期
// 和脏标记传播。渲染本身由宿主游戏完成：渲染器通过脏标记发现需要重绘
// 的子树，遍历 Children() 自行绘制。
package display

// Node 显示树节点接口
// 所有挂入显示树的元素都实现该接口（通过嵌入 Container 自动获得）
//
// 设计原则：
//   - 父容器激活/停用时递归调用子节点自身的 Activate/Deactivate，
//     子节点类型（如可点击控件）可以覆盖这两个方法挂接自己的注册逻辑
//   - attach/detach 为包内方法，保证所有节点都以 Container 为基础，
//     父子指针和脏标记传播路径保持一致
type Node interface {
	// Activate 激活节点（递归激活子节点）
	Activate()
	// Deactivate 停用节点（递归停用子节点）
	Deactivate()
	// IsActive 返回节点是否处于激活状态
	IsActive() bool
	// Bounds 返回节点的屏幕坐标边界 (x, y, width, height)
	Bounds() (x, y, w, h float64)
	// ContainsPoint 检测屏幕坐标点是否落在节点边界内
	ContainsPoint(px, py float64) bool
	// IsVisible 返回节点是否可见（不可见节点不参与指针交互）
	IsVisible() bool
	// MarkDirty 标记节点需要重绘
	MarkDirty()
	// Parent 返回父容器，根节点返回 nil
	Parent() *Container

	// 父子指针的挂接/摘除由 Container 内部维护
	attach(parent *Container)
	detach()
}

// Container 显示树容器
// 持有屏幕坐标位置和尺寸、子节点列表、激活状态和脏标记
//
// 坐标系：屏幕像素坐标，原点在左上角（与 Ebitengine 一致）
type Container struct {
	// X, Y 左上角屏幕坐标（像素）
	X, Y float64
	// Width, Height 尺寸（像素）
	Width, Height float64

	// Visible 是否可见
	// 不可见的节点不参与指针交互，渲染器也应跳过
	Visible bool

	// Floating 是否固定在屏幕空间
	// true 表示位置不随世界摄像机移动（UI 元素的常态）
	Floating bool

	// Kinematic 是否脱离物理管辖
	// true 表示物理/包围盒剔除不得吞掉该节点的指针事件
	Kinematic bool

	parent   *Container
	children []Node
	active   bool
	dirty    bool
}

// NewContainer 创建容器
//
// 参数：
//   - x, y: 左上角屏幕坐标（像素）
//   - w, h: 宽度和高度（像素）
func NewContainer(x, y, w, h float64) *Container {
	return &Container{
		X:       x,
		Y:       y,
		Width:   w,
		Height:  h,
		Visible: true,
	}
}

// AddChild 将子节点挂到容器下
// 如果子节点已有父容器，先从旧父容器摘除
// 如果当前容器处于激活状态，子节点立即激活（激活状态随树结构走）
func (c *Container) AddChild(child Node) {
	if child == nil {
		return
	}
	if p := child.Parent(); p != nil {
		p.RemoveChild(child)
	}
	child.attach(c)
	c.children = append(c.children, child)
	c.MarkDirty()

	if c.active && !child.IsActive() {
		child.Activate()
	}
}

// RemoveChild 将子节点从容器摘除
// 激活中的子节点会先被停用，保证注册类资源被释放
func (c *Container) RemoveChild(child Node) {
	if child == nil {
		return
	}
	for i, n := range c.children {
		if n == child {
			if child.IsActive() {
				child.Deactivate()
			}
			child.detach()
			c.children = append(c.children[:i], c.children[i+1:]...)
			c.MarkDirty()
			return
		}
	}
}

// Children 返回子节点列表（按添加顺序，后添加的在视觉上层）
func (c *Container) Children() []Node {
	return c.children
}

// Activate 激活容器并递归激活所有子节点
// 重复调用是安全的无操作
func (c *Container) Activate() {
	if c.active {
		return
	}
	c.active = true
	for _, child := range c.children {
		child.Activate()
	}
}

// Deactivate 停用容器并递归停用所有子节点
// 重复调用是安全的无操作
func (c *Container) Deactivate() {
	if !c.active {
		return
	}
	c.active = false
	for _, child := range c.children {
		child.Deactivate()
	}
}

// IsActive 返回容器是否激活
func (c *Container) IsActive() bool {
	return c.active
}

// MarkDirty 标记需要重绘
// 脏标记沿父链向根传播，渲染器从根向下即可找到所有脏子树
func (c *Container) MarkDirty() {
	for n := c; n != nil; n = n.parent {
		n.dirty = true
	}
}

// IsDirty 返回节点是否需要重绘
func (c *Container) IsDirty() bool {
	return c.dirty
}

// ClearDirty 清除本节点的脏标记（不影响子节点）
// 渲染器绘制完成后调用
func (c *Container) ClearDirty() {
	c.dirty = false
}

// Bounds 返回屏幕坐标边界
func (c *Container) Bounds() (x, y, w, h float64) {
	return c.X, c.Y, c.Width, c.Height
}

// SetPosition 移动容器到新的屏幕坐标
func (c *Container) SetPosition(x, y float64) {
	if c.X == x && c.Y == y {
		return
	}
	c.X = x
	c.Y = y
	c.MarkDirty()
}

// SetSize 调整容器尺寸
func (c *Container) SetSize(w, h float64) {
	if c.Width == w && c.Height == h {
		return
	}
	c.Width = w
	c.Height = h
	c.MarkDirty()
}

// ContainsPoint 检测屏幕坐标点是否落在容器边界内
// 边界为闭区间，与按钮/复选框等交互系统的命中检测一致
func (c *Container) ContainsPoint(px, py float64) bool {
	return px >= c.X &&
		px <= c.X+c.Width &&
		py >= c.Y &&
		py <= c.Y+c.Height
}

// IsVisible 返回容器在屏幕上是否可见
// 任一祖先不可见时整棵子树都不可见（也不参与指针交互）
func (c *Container) IsVisible() bool {
	for n := c; n != nil; n = n.parent {
		if !n.Visible {
			return false
		}
	}
	return true
}

// Parent 返回父容器，根节点返回 nil
func (c *Container) Parent() *Container {
	return c.parent
}

func (c *Container) attach(parent *Container) {
	c.parent = parent
}

func (c *Container) detach() {
	c.parent = nil
}
