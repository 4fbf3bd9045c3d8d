package ast

// NewUniverse builds Universe{level, erasable}.
func NewUniverse(level uint64, erasable bool) *Universe {
	d := newDigester(tagUniverse).nat(level)
	erasableByte := uint64(0)
	if erasable {
		erasableByte = 1
	}
	digest := d.nat(erasableByte).finish()
	return &Universe{node: node{digest: digest}, Level: level, Erasable: erasable}
}

// NewDeb builds Deb{index}.
func NewDeb(index uint64) *Deb {
	digest := newDigester(tagDeb).nat(index).finish()
	return &Deb{node: node{digest: digest}, Index: index}
}

// NewVconDef builds a VconDef, computing its digest from its children.
func NewVconDef(paramTypes []Expr, indexArgs []Expr) VconDef {
	digest := newDigester(tagVconDef).
		slice(digestsOf(paramTypes)).
		slice(digestsOf(indexArgs)).
		finish()
	return VconDef{digest: digest, ParamTypes: paramTypes, IndexArgs: indexArgs}
}

// NewInd builds an Ind, computing its digest from its children.
func NewInd(name string, level uint64, erasable bool, indexTypes []Expr, vconDefs []VconDef) *Ind {
	d := newDigester(tagInd).bytes([]byte(name)).nat(level)
	erasableByte := uint64(0)
	if erasable {
		erasableByte = 1
	}
	d = d.nat(erasableByte).slice(digestsOf(indexTypes))
	vconDigests := make([]Digest, len(vconDefs))
	for i, def := range vconDefs {
		vconDigests[i] = def.Digest()
	}
	digest := d.slice(vconDigests).finish()
	return &Ind{
		node:       node{digest: digest},
		Name:       name,
		Level:      level,
		Erasable:   erasable,
		IndexTypes: indexTypes,
		VconDefs:   vconDefs,
	}
}

// NewVcon builds Vcon{ind, vconIndex}.
func NewVcon(ind *Ind, vconIndex uint64) *Vcon {
	digest := newDigester(tagVcon).digest(ind.Digest()).nat(vconIndex).finish()
	return &Vcon{node: node{digest: digest}, Ind: ind, VconIndex: vconIndex}
}

// NewMatchCase builds a MatchCase.
func NewMatchCase(arity uint64, returnVal Expr) MatchCase {
	digest := newDigester(tagMatchCase).nat(arity).digest(returnVal.Digest()).finish()
	return MatchCase{digest: digest, Arity: arity, ReturnVal: returnVal}
}

// NewMatch builds a Match.
func NewMatch(matchee Expr, returnTypeArity uint64, returnType Expr, cases []MatchCase) *Match {
	d := newDigester(tagMatch).digest(matchee.Digest()).nat(returnTypeArity).digest(returnType.Digest())
	caseDigests := make([]Digest, len(cases))
	for i, c := range cases {
		caseDigests[i] = c.Digest()
	}
	digest := d.slice(caseDigests).finish()
	return &Match{
		node:            node{digest: digest},
		Matchee:         matchee,
		ReturnTypeArity: returnTypeArity,
		ReturnType:      returnType,
		Cases:           cases,
	}
}

// NewFun builds a Fun. Unlike App/For, a Fun with zero params is NOT
// collapsed at construction — FunHasZeroParams is reported by the type
// checker instead, matching the teacher kernel's explicit arity assertion.
func NewFun(decreasingIndex *uint64, paramTypes []Expr, returnType Expr, returnVal Expr) *Fun {
	d := newDigester(tagFun)
	if decreasingIndex != nil {
		d = d.nat(1).nat(*decreasingIndex)
	} else {
		d = d.nat(0)
	}
	digest := d.slice(digestsOf(paramTypes)).digest(returnType.Digest()).digest(returnVal.Digest()).finish()
	return &Fun{
		node:            node{digest: digest},
		DecreasingIndex: decreasingIndex,
		ParamTypes:      paramTypes,
		ReturnType:      returnType,
		ReturnVal:       returnVal,
	}
}

// NewApp builds App{callee, args}. A nullary application collapses to the
// callee itself: App(callee, []) reduces to callee.
func NewApp(callee Expr, args []Expr) Expr {
	if len(args) == 0 {
		return callee
	}
	digest := newDigester(tagApp).digest(callee.Digest()).slice(digestsOf(args)).finish()
	return &App{node: node{digest: digest}, Callee: callee, Args: args}
}

// NewFor builds For{paramTypes, returnType}. A nullary dependent function
// type collapses to its return type: For([], ret) reduces to ret.
func NewFor(paramTypes []Expr, returnType Expr) Expr {
	if len(paramTypes) == 0 {
		return returnType
	}
	digest := newDigester(tagFor).slice(digestsOf(paramTypes)).digest(returnType.Digest()).finish()
	return &For{node: node{digest: digest}, ParamTypes: paramTypes, ReturnType: returnType}
}
