package visitor

import "container/list"

// ListVisitorOf creates a Visitor for a linked list, the key is the element position
func ListVisitorOf(aList *list.List) Visitor[int, any] {
	return func(f func(key int, element any) (bool, error)) error {
		i := 0
		for item := aList.Front(); item != nil; item = item.Next() {
			continueVisit, err := f(i, item.Value)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
			i++
		}
		return nil
	}
}
