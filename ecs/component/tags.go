package component

type GroundTag struct{}

var GroundTagComponent = NewComponent[GroundTag]()

type CarriageTag struct{}

var CarriageTagComponent = NewComponent[CarriageTag]()

type JoinerTag struct{}

var JoinerTagComponent = NewComponent[JoinerTag]()

type PendulumTag struct{}

var PendulumTagComponent = NewComponent[PendulumTag]()

type CameraTargetTag struct{}

var CameraTargetTagComponent = NewComponent[CameraTargetTag]()
