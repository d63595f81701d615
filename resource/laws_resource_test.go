package resource_test

import (
	"reflect"
	"testing"
	"testing/quick"

	"github.com/charmingruby/remotedata/resource"
)

func arbitrary(kind uint8, value int, params string, hasParams bool) resource.Resource[int, string] {
	build := func(construct func(params ...string) resource.Resource[int, string]) resource.Resource[int, string] {
		if hasParams {
			return construct(params)
		}
		return construct()
	}
	switch kind % 4 {
	case 0:
		return build(func(params ...string) resource.Resource[int, string] {
			return resource.Data(value, params...)
		})
	case 1:
		return build(resource.Query[int, string])
	case 2:
		return build(resource.Empty[int, string])
	default:
		return build(func(params ...string) resource.Resource[int, string] {
			return resource.Failure[int, string]([]string{"boom"}, params...)
		})
	}
}

func TestResourceFunctorLaws(t *testing.T) {
	id := func(x int) int { return x }
	inc := func(x int) int { return x + 1 }
	dbl := func(x int) int { return x * 2 }

	check := func(kind uint8, value int, params string, hasParams bool) bool {
		res := arbitrary(kind, value, params, hasParams)
		identity := reflect.DeepEqual(resource.Map(res, id), res)
		left := resource.Map(resource.Map(res, inc), dbl)
		right := resource.Map(res, func(v int) int { return dbl(inc(v)) })
		return identity && reflect.DeepEqual(left, right)
	}

	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("functor laws failed: %v", err)
	}
}

func TestResourceMonadLaws(t *testing.T) {
	f := func(r resource.Resource[int, string]) resource.Resource[int, string] {
		value, _ := r.Value()
		if value%2 == 0 {
			return resource.Data(value/2, "halved")
		}
		return resource.Failure[int, string]([]string{"odd"})
	}
	g := func(r resource.Resource[int, string]) resource.Resource[int, string] {
		value, _ := r.Value()
		return resource.Of(r, value+3)
	}

	leftIdentity := func(value int, params string) bool {
		seed := resource.Data(value, params)
		return reflect.DeepEqual(resource.Chain(seed, f), f(seed))
	}
	if err := quick.Check(leftIdentity, nil); err != nil {
		t.Fatalf("left identity failed: %v", err)
	}

	rightIdentity := func(kind uint8, value int, params string, hasParams bool) bool {
		res := arbitrary(kind, value, params, hasParams)
		lift := func(r resource.Resource[int, string]) resource.Resource[int, string] {
			v, _ := r.Value()
			return resource.Of(r, v)
		}
		return reflect.DeepEqual(resource.Chain(res, lift), res)
	}
	if err := quick.Check(rightIdentity, nil); err != nil {
		t.Fatalf("right identity failed: %v", err)
	}

	associativity := func(kind uint8, value int, params string, hasParams bool) bool {
		res := arbitrary(kind, value, params, hasParams)
		left := resource.Chain(resource.Chain(res, f), g)
		right := resource.Chain(res, func(r resource.Resource[int, string]) resource.Resource[int, string] {
			return resource.Chain(f(r), g)
		})
		return reflect.DeepEqual(left, right)
	}
	if err := quick.Check(associativity, nil); err != nil {
		t.Fatalf("associativity failed: %v", err)
	}
}

func TestResourceApplicativeLaws(t *testing.T) {
	id := func(x int) int { return x }
	inc := func(x int) int { return x + 1 }

	identity := func(kind uint8, value int, params string, hasParams bool) bool {
		v := arbitrary(kind, value, params, hasParams)
		pure := resource.Data[func(int) int, string](id)
		return reflect.DeepEqual(resource.Ap(pure, v), v)
	}
	if err := quick.Check(identity, nil); err != nil {
		t.Fatalf("applicative identity failed: %v", err)
	}

	homomorphism := func(x int) bool {
		left := resource.Ap(resource.Data[func(int) int, string](inc), resource.Data[int, string](x))
		right := resource.Data[int, string](inc(x))
		return reflect.DeepEqual(left, right)
	}
	if err := quick.Check(homomorphism, nil); err != nil {
		t.Fatalf("homomorphism failed: %v", err)
	}

	// Interchange holds for params-free sides: the result's params always
	// come from the value argument, so a params-carrying u would differ
	// from a params-free pure on that channel alone.
	interchange := func(y int) bool {
		u := resource.Data[func(int) int, string](inc)
		left := resource.Ap(u, resource.Data[int, string](y))
		apply := func(fn func(int) int) int { return fn(y) }
		right := resource.Ap(resource.Data[func(func(int) int) int, string](apply), u)
		return reflect.DeepEqual(left, right)
	}
	if err := quick.Check(interchange, nil); err != nil {
		t.Fatalf("interchange failed: %v", err)
	}
}

func TestApParamsPropagation(t *testing.T) {
	inc := func(x int) int { return x + 1 }

	dataSide := func(fnParams string, value int, valParams string) bool {
		f := resource.Data[func(int) int, string](inc, fnParams)
		v := resource.Data(value, valParams)
		params, ok := resource.Ap(f, v).Params()
		return ok && params == valParams
	}
	if err := quick.Check(dataSide, nil); err != nil {
		t.Fatalf("value side params must win: %v", err)
	}

	nonDataSide := func(kind uint8, vKind uint8, fnParams string, value int, valParams string, hasValParams bool) bool {
		f := resource.Query[func(int) int, string](fnParams)
		switch kind % 3 {
		case 1:
			f = resource.Empty[func(int) int, string](fnParams)
		case 2:
			f = resource.Failure[func(int) int, string]([]string{"x"}, fnParams)
		}
		v := arbitrary(vKind, value, valParams, hasValParams)
		gotParams, gotOk := resource.Ap(f, v).Params()
		wantParams, wantOk := v.Params()
		return gotOk == wantOk && gotParams == wantParams
	}
	if err := quick.Check(nonDataSide, nil); err != nil {
		t.Fatalf("non-data function side must adopt argument params: %v", err)
	}
}
