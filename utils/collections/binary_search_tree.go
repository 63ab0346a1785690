package collections

import (
	"iter"

	"golang.org/x/exp/constraints"
)

type treeNode[T constraints.Ordered] struct {
	value T
	left  *treeNode[T]
	right *treeNode[T]
}

// BinarySearchTree is an unbalanced binary search tree. Values equal to a
// node are stored in its right subtree.
type BinarySearchTree[T constraints.Ordered] struct {
	root *treeNode[T]
	size int
}

func NewBinarySearchTree[T constraints.Ordered]() *BinarySearchTree[T] {
	return &BinarySearchTree[T]{}
}

func (t *BinarySearchTree[T]) Add(v T) {
	n := &treeNode[T]{value: v}
	t.size++
	if t.root == nil {
		t.root = n
		return
	}
	cur := t.root
	for {
		if v < cur.value {
			if cur.left == nil {
				cur.left = n
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				return
			}
			cur = cur.right
		}
	}
}

func (t *BinarySearchTree[T]) Contains(v T) bool {
	cur := t.root
	for cur != nil {
		switch {
		case v == cur.value:
			return true
		case v < cur.value:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return false
}

func (t *BinarySearchTree[T]) Size() int {
	return t.size
}

// Traverse yields the values in pre-order: node, left subtree, right subtree.
func (t *BinarySearchTree[T]) Traverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.root == nil {
			return
		}
		s := NewStack[*treeNode[T]]()
		s.Push(t.root)
		for s.Size() > 0 {
			top := s.Pop()
			if !yield(top.value) {
				return
			}
			if top.right != nil {
				s.Push(top.right)
			}
			if top.left != nil {
				s.Push(top.left)
			}
		}
	}
}

// LevelOrder yields the values breadth first, left to right within a level.
func (t *BinarySearchTree[T]) LevelOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.root == nil {
			return
		}
		q := NewQueue[*treeNode[T]]()
		q.Push(t.root)
		for q.Size() > 0 {
			top := q.Pop()
			if !yield(top.value) {
				return
			}
			if top.left != nil {
				q.Push(top.left)
			}
			if top.right != nil {
				q.Push(top.right)
			}
		}
	}
}
