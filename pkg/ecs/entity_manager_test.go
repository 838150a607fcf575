package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testOffsetComponent struct {
	X, Y int
}

type testTaskComponent struct {
	Done bool
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 != 1 || id2 != 2 {
		t.Errorf("Expected IDs 1 and 2, got %d and %d", id1, id2)
	}
	if !em.Exists(id1) || em.Count() != 2 {
		t.Error("Entities should exist after creation")
	}
	if em.Exists(0) {
		t.Error("ID 0 is reserved")
	}
}

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testOffsetComponent{X: 3, Y: -4})

	offset, ok := GetComponent[*testOffsetComponent](em, id)
	if !ok {
		t.Fatal("Component should be found")
	}
	if offset.X != 3 || offset.Y != -4 {
		t.Errorf("Component data mismatch, got (%d, %d)", offset.X, offset.Y)
	}

	// 同一个指针，修改对存储可见
	offset.X = 10
	again, _ := GetComponent[*testOffsetComponent](em, id)
	if again.X != 10 {
		t.Error("Generic lookup should return the stored pointer")
	}

	if _, ok := GetComponent[*testTaskComponent](em, id); ok {
		t.Error("Missing component should not be found")
	}
	if _, ok := GetComponent[*testOffsetComponent](em, 42); ok {
		t.Error("Unknown entity should not have components")
	}
}

func TestGenericAndReflectAgree(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testTaskComponent{})

	if !HasComponent[*testTaskComponent](em, id) {
		t.Error("Generic HasComponent should find the component")
	}
	if !em.HasComponent(id, reflect.TypeOf(&testTaskComponent{})) {
		t.Error("Reflect HasComponent should find the component")
	}

	RemoveComponent[*testTaskComponent](em, id)
	if em.HasComponent(id, reflect.TypeOf(&testTaskComponent{})) {
		t.Error("Component should be removed")
	}
	if !em.Exists(id) {
		t.Error("Removing a component must keep the entity")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	em.AddComponent(id1, &testOffsetComponent{})
	em.AddComponent(id2, &testOffsetComponent{})

	em.DestroyEntity(id1)
	if !HasComponent[*testOffsetComponent](em, id1) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id1) {
		t.Error("Entity should be removed after cleanup")
	}
	if !em.Exists(id2) {
		t.Error("Other entities must survive cleanup")
	}

	// 再次清理不应出错
	em.RemoveMarkedEntities()
	if em.Count() != 1 {
		t.Errorf("Expected 1 entity, got %d", em.Count())
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testOffsetComponent{})
	em.AddComponent(id1, &testTaskComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testOffsetComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testTaskComponent{})

	both := GetEntitiesWith2[*testOffsetComponent, *testTaskComponent](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("Expected [%d], got %v", id1, both)
	}

	offsets := GetEntitiesWith1[*testOffsetComponent](em)
	if !reflect.DeepEqual(offsets, []EntityID{id1, id2}) {
		t.Errorf("Expected sorted [%d %d], got %v", id1, id2, offsets)
	}

	viaReflect := em.GetEntitiesWith(reflect.TypeOf(&testTaskComponent{}))
	if !reflect.DeepEqual(viaReflect, []EntityID{id1, id3}) {
		t.Errorf("Expected sorted [%d %d], got %v", id1, id3, viaReflect)
	}

	none := GetEntitiesWith3[*testOffsetComponent, *testTaskComponent, *int](em)
	if len(none) != 0 {
		t.Errorf("Expected no entities, got %v", none)
	}
}

func BenchmarkGetEntitiesWith2(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 200; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testOffsetComponent{})
		if i%2 == 0 {
			em.AddComponent(id, &testTaskComponent{})
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testOffsetComponent, *testTaskComponent](em)
	}
}
