package object

import "testing"

func TestEqualPrimitives(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Handle
		want    bool
		wantErr bool
	}{
		{"both none", None(), None(), true, false},
		{"equal numbers", Own(Number{Value: 3}), Own(Number{Value: 3}), true, false},
		{"unequal numbers", Own(Number{Value: 3}), Own(Number{Value: 4}), false, false},
		{"equal strings", Own(Str{Value: "a"}), Own(Str{Value: "a"}), true, false},
		{"equal bools", Own(Bool{Value: true}), Own(Bool{Value: true}), true, false},
		{"incompatible kinds", Own(Number{Value: 1}), Own(Str{Value: "1"}), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Equal(tt.a, tt.b, NewBufferContext())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Equal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLessPrimitivesAndNoneIsError(t *testing.T) {
	less, err := Less(Own(Number{Value: 1}), Own(Number{Value: 2}), NewBufferContext())
	if err != nil || !less {
		t.Fatalf("Less(1,2) = %v, %v; want true, nil", less, err)
	}
	if _, err := Less(None(), None(), NewBufferContext()); err == nil {
		t.Fatal("expected Less(none, none) to be an error")
	}
}

func TestLessTransitivity(t *testing.T) {
	a, b, c := Own(Number{Value: 1}), Own(Number{Value: 2}), Own(Number{Value: 3})
	ab, _ := Less(a, b, NewBufferContext())
	bc, _ := Less(b, c, NewBufferContext())
	ac, _ := Less(a, c, NewBufferContext())
	if !(ab && bc && ac) {
		t.Fatal("expected Less to be transitive over numbers")
	}
}

func TestDerivedComparators(t *testing.T) {
	a := Own(Number{Value: 1})
	ctx := NewBufferContext()

	ne, _ := NotEqual(a, Own(Number{Value: 2}), ctx)
	if !ne {
		t.Error("NotEqual should be the negation of Equal")
	}

	ge, _ := GreaterOrEqual(Own(Number{Value: 2}), Own(Number{Value: 2}), ctx)
	if !ge {
		t.Error("GreaterOrEqual(2,2) should be true")
	}

	gt, _ := Greater(Own(Number{Value: 1}), Own(Number{Value: 2}), ctx)
	if gt {
		t.Error("Greater(1,2) should be false")
	}

	le, _ := LessOrEqual(Own(Number{Value: 2}), Own(Number{Value: 2}), ctx)
	if !le {
		t.Error("LessOrEqual(2,2) should be true")
	}
}

func TestEqualDispatchesToInstanceDunder(t *testing.T) {
	cls := NewClass("Box", []Method{
		{Name: "__eq__", Params: []string{"other"}, Body: constNode{result: Val(Own(Bool{Value: true}))}},
		{Name: "__lt__", Params: []string{"other"}, Body: constNode{result: Val(Own(Bool{Value: false}))}},
	}, nil)
	box := NewInstance(cls)
	boxHandle := Own(box)
	ctx := NewBufferContext()

	eq, err := Equal(boxHandle, None(), ctx)
	if err != nil || !eq {
		t.Fatalf("Equal() = %v, %v; want true, nil", eq, err)
	}

	lt, err := Less(boxHandle, None(), ctx)
	if err != nil || lt {
		t.Fatalf("Less() = %v, %v; want false, nil", lt, err)
	}
}
