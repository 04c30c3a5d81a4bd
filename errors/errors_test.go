package errors

import (
	stderrors "errors"
	"reflect"
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	err := New("0")
	err1 := Wrap(err, "1")
	err2 := Wrap(err1, "2")
	err3 := Wrap(err2)

	if got := Root(err1); got != err {
		t.Fatalf("Root(%v)=%v want %v", err1, got, err)
	}

	if got := Root(err2); got != err {
		t.Fatalf("Root(%v)=%v want %v", err2, got, err)
	}

	if err2.Error() != "2: 1: 0" {
		t.Fatalf("err msg = %s want '2: 1: 0'", err2.Error())
	}

	if err3.Error() != "2: 1: 0" {
		t.Fatalf("err msg = %s want '2: 1: 0'", err3.Error())
	}

	if Wrap(nil, "x") != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
}

func TestWrapf(t *testing.T) {
	root := New("root")
	err := Wrapf(root, "pos %d", 7)
	if err.Error() != "pos 7: root" {
		t.Errorf("got %q want %q", err.Error(), "pos 7: root")
	}
	if Root(err) != root {
		t.Errorf("Root(%v) = %v want %v", err, Root(err), root)
	}
}

func TestDetail(t *testing.T) {
	root := New("foo")
	cases := []struct {
		err     error
		detail  string
		message string
	}{
		{root, "", "foo"},
		{WithDetail(root, "bar"), "bar", "bar: foo"},
		{WithDetail(WithDetail(root, "bar"), "baz"), "bar; baz", "baz: bar: foo"},
		{Wrap(WithDetail(root, "bar"), "baz"), "bar", "baz: bar: foo"},
		{WithDetailf(root, "hex %x", 255), "hex ff", "hex ff: foo"},
	}

	for _, test := range cases {
		if got := Detail(test.err); got != test.detail {
			t.Errorf("Detail(%v) = %v want %v", test.err, got, test.detail)
		}
		if got := test.err.Error(); got != test.message {
			t.Errorf("(%v).Error() = %v want %v", test.err, got, test.message)
		}
		if got := Root(test.err); got != root {
			t.Errorf("Root(%v) = %v want %v", test.err, got, root)
		}
	}
}

func TestData(t *testing.T) {
	root := New("foo")
	cases := []struct {
		err  error
		data interface{}
	}{
		{WithData(root, "a", "b"), map[string]interface{}{"a": "b"}},
		{WithData(WithData(root, "a", "b"), "c", "d"), map[string]interface{}{"a": "b", "c": "d"}},
		{Wrap(WithData(root, "a", "b"), "baz"), map[string]interface{}{"a": "b"}},
	}

	for _, test := range cases {
		if got := Data(test.err); !reflect.DeepEqual(got, test.data) {
			t.Errorf("Data(%#v) = %v want %v", test.err, got, test.data)
		}
		if got := Root(test.err); got != root {
			t.Errorf("Root(%#v) = %v want %v", test.err, got, root)
		}
	}
}

func TestSub(t *testing.T) {
	x := New("x")
	y := New("y")
	cases := []struct{ new, old, want error }{
		{nil, nil, nil},
		{x, nil, nil},
		{nil, y, nil},
		{x, y, x},
		{x, Wrap(y, "w"), x},
	}

	for _, test := range cases {
		got := Root(Sub(test.new, test.old))
		if got != test.want {
			t.Errorf("Root(Sub(%v, %v)) = %v want %v", test.new, test.old, got, test.want)
		}
	}

	err := Sub(x, WithDetail(y, "more"))
	if Detail(err) != "more" {
		t.Errorf("Detail(Sub) = %q want %q", Detail(err), "more")
	}
	if !strings.Contains(err.Error(), "x") {
		t.Errorf("Sub message %q should mention the new root", err.Error())
	}
}

func TestStdlibCompat(t *testing.T) {
	root := New("root")
	err := WithDetail(Wrap(root, "ctx"), "detail")
	if !stderrors.Is(err, root) {
		t.Errorf("errors.Is(%v, %v) = false", err, root)
	}
}

func TestStack(t *testing.T) {
	if Stack(New("plain")) != nil {
		t.Error("unwrapped error should carry no stack")
	}
	if len(Stack(Wrap(New("root"), "ctx"))) == 0 {
		t.Error("wrapped error should carry a stack")
	}
}
