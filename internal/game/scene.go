package game

import "github.com/go-gl/mathgl/mgl64"

// Node is a visual transform in the scene graph. Rendering reads position,
// orientation and the box size; physics never touches nodes directly.
type Node struct {
	Name        string
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Size        mgl64.Vec3 // local box dimensions, zero for pure groups
	Color       RGB
	Children    []*Node
}

func NewNode(name string) *Node {
	return &Node{Name: name, Orientation: mgl64.QuatIdent()}
}

func (n *Node) Add(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// Find returns the first descendant (or n itself) with the given name.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// WorldToLocal converts a world-space point into n's local frame.
func (n *Node) WorldToLocal(p mgl64.Vec3) mgl64.Vec3 {
	return n.Orientation.Inverse().Rotate(p.Sub(n.Position))
}

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min, Max mgl64.Vec3
}

func emptyBox3() Box3 {
	const big = 1e30
	return Box3{
		Min: mgl64.Vec3{big, big, big},
		Max: mgl64.Vec3{-big, -big, -big},
	}
}

func (b *Box3) ExpandByPoint(p mgl64.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

func (b Box3) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b Box3) HalfExtents() mgl64.Vec3 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

func (b Box3) Empty() bool {
	return b.Min.X() > b.Max.X()
}

// BoundingBox computes the bounding box of a node hierarchy in the root
// node's local frame, from each descendant's box size.
func (n *Node) BoundingBox() Box3 {
	box := emptyBox3()
	expandBox(&box, n, mgl64.Vec3{}, mgl64.QuatIdent())
	return box
}

func expandBox(box *Box3, n *Node, pos mgl64.Vec3, rot mgl64.Quat) {
	if n.Size.LenSqr() > 0 {
		h := n.Size.Mul(0.5)
		for i := 0; i < 8; i++ {
			corner := mgl64.Vec3{h.X(), h.Y(), h.Z()}
			if i&1 != 0 {
				corner[0] = -corner[0]
			}
			if i&2 != 0 {
				corner[1] = -corner[1]
			}
			if i&4 != 0 {
				corner[2] = -corner[2]
			}
			box.ExpandByPoint(pos.Add(rot.Rotate(corner)))
		}
	}
	for _, c := range n.Children {
		childPos := pos.Add(rot.Rotate(c.Position))
		childRot := rot.Mul(c.Orientation)
		expandBox(box, c, childPos, childRot)
	}
}

// WheelRigKind tags how steerable wheels were found in a vehicle mesh.
type WheelRigKind int

const (
	WheelRigNone WheelRigKind = iota
	WheelRigGrouped
	WheelRigNamed
)

// WheelRig is resolved once at mesh build time; per-frame wheel animation
// only touches the resolved handles.
type WheelRig struct {
	Kind   WheelRigKind
	Wheels []*Node // Grouped
	Node   *Node   // Named
}

// ResolveWheelRig finds wheels under root: a group node named "wheels"
// wins, otherwise a single node whose name starts with "wheel".
func ResolveWheelRig(root *Node) WheelRig {
	if root == nil {
		return WheelRig{Kind: WheelRigNone}
	}
	if group := root.Find("wheels"); group != nil && len(group.Children) > 0 {
		return WheelRig{Kind: WheelRigGrouped, Wheels: group.Children}
	}
	var named *Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if named != nil {
			return
		}
		if len(n.Name) >= 5 && n.Name[:5] == "wheel" {
			named = n
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	if named != nil {
		return WheelRig{Kind: WheelRigNamed, Node: named}
	}
	return WheelRig{Kind: WheelRigNone}
}
