package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj2.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"enemy", "ai", "dangerous"}

	if !obj.HasTag("enemy") {
		t.Error("HasTag should return true for existing tag")
	}

	if !obj.HasTag("ai") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("player") {
		t.Error("HasTag should return false for non-existent tag")
	}

	// Test empty tags
	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child, got %d", len(parent.Children))
	}

	if parent.Children[0] != child {
		t.Error("Child not added to parent's Children slice")
	}
}

func TestGameObjectRemoveChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)

	parent.RemoveChild(child1)

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child after removal, got %d", len(parent.Children))
	}

	if parent.Children[0] != child2 {
		t.Error("Wrong child removed")
	}

	if child1.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if len(obj.components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.components))
	}

	if comp.gameObject != obj {
		t.Error("Component.gameObject should be set")
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	found := GetComponent[*BaseComponent](obj)
	if found != comp {
		t.Error("GetComponent failed to find component")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")

	// First call should set started = true
	obj.Start()
	if !obj.started {
		t.Error("started flag should be true after Start()")
	}

	// Second call should be a no-op (no panic, no re-initialization)
	obj.Start() // Should not panic or cause issues
}

func TestGameObjectSetActiveNotifies(t *testing.T) {
	obj := NewGameObject("Test")
	rec := &lifecycleRecorder{}
	obj.AddComponent(rec)

	obj.SetActive(false)
	obj.SetActive(false) // no change, no callback
	obj.SetActive(true)

	if rec.disables != 1 {
		t.Errorf("Expected 1 OnDisable, got %d", rec.disables)
	}
	if rec.enables != 1 {
		t.Errorf("Expected 1 OnEnable, got %d", rec.enables)
	}
}

func TestAddComponentAfterStart(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Start()

	rec := &lifecycleRecorder{}
	obj.AddComponent(rec)

	if rec.started != 1 {
		t.Errorf("Component added to a started object should start immediately, got %d", rec.started)
	}
}

type viewStub struct {
	BaseComponent
}

func (v *viewStub) ViewPoint() (location, forward rl.Vector3) {
	return rl.Vector3{}, rl.Vector3{X: 1}
}

func TestFindComponentInChildren(t *testing.T) {
	root := NewGameObject("Root")
	mid := NewGameObject("Mid")
	leaf := NewGameObject("Leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)
	rec := &viewStub{}
	leaf.AddComponent(rec)

	found, ok := FindComponentInChildren[Viewpoint](root)
	if !ok || found != rec {
		t.Error("FindComponentInChildren should find the viewpoint on the leaf")
	}

	if _, ok := FindComponentInChildren[Viewpoint](NewGameObject("Empty")); ok {
		t.Error("Object without viewpoint should report not found")
	}
	if FindComponent[Viewpoint](root) != nil {
		t.Error("FindComponent should only look at the object itself")
	}
}

func TestGameObjectRootAndDescendant(t *testing.T) {
	root := NewGameObject("Root")
	child := NewGameObject("Child")
	root.AddChild(child)

	if child.Root() != root {
		t.Error("Root() should walk to the top")
	}
	if !child.IsDescendantOf(root) || !child.IsDescendantOf(child) {
		t.Error("IsDescendantOf should include the object and its ancestors")
	}
	if root.IsDescendantOf(child) {
		t.Error("Parent is not a descendant of its child")
	}
}
