package collections

import (
	"fmt"
	"iter"
)

type listNode[T comparable] struct {
	value T
	next  *listNode[T]
}

// LinkedList is a singly linked list with O(1) append.
type LinkedList[T comparable] struct {
	head *listNode[T]
	tail *listNode[T]
	size int
}

func NewLinkedList[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

func (l *LinkedList[T]) Add(v T) {
	n := &listNode[T]{value: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Remove deletes the first element equal to v.
func (l *LinkedList[T]) Remove(v T) error {
	var prev *listNode[T]
	for cur := l.head; cur != nil; prev, cur = cur, cur.next {
		if cur.value != v {
			continue
		}
		if prev == nil {
			l.head = cur.next
		} else {
			prev.next = cur.next
		}
		if l.tail == cur {
			l.tail = prev
		}
		l.size--
		return nil
	}
	return ErrValueNotExisted
}

func (l *LinkedList[T]) Contains(v T) bool {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value == v {
			return true
		}
	}
	return false
}

func (l *LinkedList[T]) Size() int {
	return l.size
}

// Traverse yields the values from head to tail.
func (l *LinkedList[T]) Traverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

func (l *LinkedList[T]) String() string {
	arr := make([]T, 0, l.size)
	for v := range l.Traverse() {
		arr = append(arr, v)
	}
	return fmt.Sprint(arr)
}
