package aregistry

import (
	"io"
	"sort"

	"ark-savior/ark/aclass"
	"ark-savior/ark/aobject"
	"ark-savior/ds"
	"github.com/pkg/errors"
)

func New(classifier *aclass.Classifier) *Registry {
	return &Registry{
		classifier:      classifier,
		Owners:          ds.NewLinkedHashMap[int64, *aobject.GameObject](),
		Inventories:     ds.NewLinkedHashMap[int64, *aobject.GameObject](),
		ItemStacks:      ds.NewLinkedHashMap[int64, *aobject.GameObject](),
		TameDinos:       ds.NewLinkedHashMap[int64, *aobject.GameObject](),
		DinoStatus:      ds.NewLinkedHashMap[int64, *aobject.GameObject](),
		InventoryOwners: ds.NewLinkedHashMap[int64, []int64](),
		Miscellaneous:   ds.NewLinkedHashMap[string, int](),
		RoleCounts:      ds.NewLinkedHashMap[aclass.Role, int](),
	}
}

// Register classifies obj and routes it into the matching mapping.
// Roles without a mapping are only counted.
func (r *Registry) Register(obj aobject.GameObject) aclass.Role {
	role := r.classifier.Classify(obj)
	r.RoleCounts.Update(role, increment)

	switch role {
	case aclass.RoleInventoryOwner:
		r.Owners.Put(obj.ID, &obj)
		r.registerOwner(obj)
	case aclass.RoleInventory:
		r.Inventories.Put(obj.ID, &obj)
	case aclass.RoleItemStack:
		r.ItemStacks.Put(obj.ID, &obj)
	case aclass.RoleTameDinosaur:
		r.TameDinos.Put(obj.ID, &obj)
	case aclass.RoleDinosaurStatus:
		r.DinoStatus.Put(obj.ID, &obj)
	case aclass.RoleMiscellaneous:
		r.Miscellaneous.Update(obj.Class, increment)
	}
	return role
}

// Source yields game objects one at a time and returns io.EOF when drained.
type Source interface {
	Next() (*aobject.GameObject, error)
}

// RegisterAll drains source into the registry and returns the number of
// objects registered.
func (r *Registry) RegisterAll(source Source) (int, error) {
	count := 0
	for {
		obj, err := source.Next()
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return count, errors.Wrapf(err, "aregistry.RegisterAll error after %d objects", count)
		}
		r.Register(*obj)
		count++
	}
}

func (r *Registry) registerOwner(owner aobject.GameObject) {
	inventoryID, ok := owner.Ref(PropertyMyInventoryComponent)
	if !ok {
		return
	}
	r.InventoryOwners.Update(
		inventoryID,
		func(ownerIDs []int64) []int64 {
			return append(ownerIDs, owner.ID)
		},
	)
}

type ClassCount struct {
	Class string
	Count int
}

// TopMiscellaneous returns the n most frequent unclassified class names.
func (r *Registry) TopMiscellaneous(n int) []ClassCount {
	counts := make([]ClassCount, 0, r.Miscellaneous.Len())
	for _, class := range r.Miscellaneous.Keys() {
		count, _ := r.Miscellaneous.Get(class)
		counts = append(counts, ClassCount{Class: class, Count: count})
	}
	sort.SliceStable(
		counts,
		func(i, j int) bool { return counts[i].Count > counts[j].Count },
	)
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

func increment(n int) int {
	return n + 1
}
