package schema

// defaultAsyncMechanisms returns the async-mechanism facts. FlowSteps
// and Timeline are the pre-authored answer sections; CallChain is the
// kernel-internal path from trigger to handler.
func defaultAsyncMechanisms() []AsyncMechanism {
	return []AsyncMechanism{
		{
			Name:         "workqueue",
			BindFuncs:    []string{"INIT_WORK", "INIT_DELAYED_WORK", "DECLARE_WORK"},
			TriggerFuncs: []string{"schedule_work", "queue_work", "schedule_delayed_work", "queue_delayed_work"},
			Context:      "进程上下文（可睡眠）",
			Description:  "工作队列，用于延迟执行耗时操作",
			CallChain: []string{
				"schedule_work (kernel/workqueue.c)",
				"queue_work_on",
				"insert_work",
				"唤醒 kworker 线程",
				"worker_thread",
				"process_one_work",
				"worker->current_func = work->func",
				"work->func(work)",
			},
			TypicalUse: "中断下半部、延迟初始化、耗时 I/O",
			FlowSteps: []string{
				"probe 中调用 INIT_WORK 绑定处理函数",
				"中断中调用 schedule_work 提交任务",
				"schedule_work 立即返回，不等待执行",
				"内核 kworker 线程稍后调度执行处理函数",
			},
			Timeline: "中断发生 → schedule_work → 立即返回 → ... → kworker 调度 → handler 执行",
		},
		{
			Name:         "timer",
			BindFuncs:    []string{"timer_setup", "DEFINE_TIMER", "setup_timer"},
			TriggerFuncs: []string{"mod_timer", "add_timer", "timer_reduce"},
			Context:      "软中断上下文（不可睡眠）",
			Description:  "定时器，在指定时间后执行",
			CallChain: []string{
				"mod_timer (kernel/time/timer.c)",
				"internal_add_timer",
				"时钟中断",
				"run_timer_softirq",
				"expire_timers",
				"call_timer_fn",
				"timer->function(timer)",
			},
			TypicalUse: "超时处理、周期性任务、看门狗",
			FlowSteps: []string{
				"probe 中调用 timer_setup 绑定回调函数",
				"mod_timer 设置定时器到期时间",
				"定时器到期后，内核调用回调函数",
			},
		},
		{
			Name:         "hrtimer",
			BindFuncs:    []string{"hrtimer_init"},
			TriggerFuncs: []string{"hrtimer_start", "hrtimer_start_range_ns"},
			Context:      "硬中断上下文（不可睡眠）",
			Description:  "高精度定时器",
			CallChain: []string{
				"hrtimer_start (kernel/time/hrtimer.c)",
				"enqueue_hrtimer",
				"高精度时钟中断",
				"hrtimer_interrupt",
				"__hrtimer_run_queues",
				"hrtimer_run_softirq (如果配置)",
				"timer->function(timer)",
			},
			TypicalUse: "纳秒级精度定时、POSIX 定时器",
			FlowSteps: []string{
				"hrtimer_init 绑定回调函数",
				"hrtimer_start 设置到期时间（ktime）",
				"高精度时钟中断到期后直接调用回调",
			},
		},
		{
			Name:         "tasklet",
			BindFuncs:    []string{"tasklet_init", "tasklet_setup", "DECLARE_TASKLET"},
			TriggerFuncs: []string{"tasklet_schedule", "tasklet_hi_schedule"},
			Context:      "软中断上下文（不可睡眠）",
			Description:  "软中断，优先级高于工作队列",
			CallChain: []string{
				"tasklet_schedule (include/linux/interrupt.h)",
				"raise_softirq_irqoff(TASKLET_SOFTIRQ)",
				"软中断处理",
				"tasklet_action",
				"tasklet->func(tasklet)",
			},
			TypicalUse: "中断下半部快速处理",
			FlowSteps: []string{
				"probe 中调用 tasklet_setup 绑定处理函数",
				"中断中调用 tasklet_schedule 调度执行",
				"中断返回后，软中断上下文执行 tasklet",
			},
		},
		{
			Name:      "irq",
			BindFuncs: []string{"request_irq", "devm_request_irq", "request_threaded_irq"},
			// 硬件触发，没有软件触发函数
			Context:     "硬中断上下文（不可睡眠，快速执行）",
			Description: "硬件中断处理",
			CallChain: []string{
				"硬件产生中断信号",
				"CPU 响应中断",
				"do_IRQ (arch/x86/kernel/irq.c)",
				"handle_irq",
				"generic_handle_irq",
				"handle_fasteoi_irq / handle_edge_irq",
				"handle_irq_event",
				"action->handler(irq, dev_id)",
			},
			TypicalUse: "硬件事件响应",
			FlowSteps: []string{
				"probe 中调用 request_irq 注册中断处理函数",
				"硬件触发中断时，CPU 调用处理函数",
				"必须快速执行，不能睡眠！",
			},
		},
		{
			Name:        "threaded_irq",
			BindFuncs:   []string{"request_threaded_irq", "devm_request_threaded_irq"},
			Context:     "进程上下文（可睡眠）",
			Description: "线程化中断处理",
			CallChain: []string{
				"硬件中断 → hardirq handler (快速)",
				"返回 IRQ_WAKE_THREAD",
				"唤醒 irq_thread",
				"irq_thread_fn",
				"action->thread_fn(irq, dev_id)",
			},
			TypicalUse: "需要睡眠的中断处理（如 I2C 通信）",
			FlowSteps: []string{
				"request_threaded_irq 同时注册 hardirq 和线程处理函数",
				"硬中断快速处理后返回 IRQ_WAKE_THREAD",
				"内核唤醒 irq 线程，在进程上下文执行 thread_fn",
			},
		},
		{
			Name:         "softirq",
			BindFuncs:    []string{"open_softirq"},
			TriggerFuncs: []string{"raise_softirq", "raise_softirq_irqoff"},
			Context:      "软中断上下文（不可睡眠）",
			Description:  "软中断（最底层机制）",
			CallChain: []string{
				"raise_softirq (kernel/softirq.c)",
				"中断返回时检查",
				"irq_exit → invoke_softirq",
				"do_softirq",
				"__do_softirq",
				"softirq_vec[nr].action()",
			},
			TypicalUse: "网络收发、块设备完成",
			FlowSteps: []string{
				"open_softirq 注册软中断处理函数",
				"raise_softirq 置位待处理标志",
				"中断返回路径上执行 __do_softirq",
			},
		},
		{
			Name:         "completion",
			BindFuncs:    []string{"init_completion", "DECLARE_COMPLETION"},
			TriggerFuncs: []string{"complete", "complete_all"},
			WaitFuncs:    []string{"wait_for_completion", "wait_for_completion_timeout"},
			Context:      "wait 在进程上下文，complete 可在任何上下文",
			Description:  "同步等待机制",
			CallChain: []string{
				"wait_for_completion (kernel/sched/completion.c)",
				"wait_for_common",
				"schedule()",
				"--- 另一方 ---",
				"complete()",
				"swake_up_locked",
				"唤醒等待者",
			},
			TypicalUse: "等待异步操作完成",
			FlowSteps: []string{
				"init_completion 初始化完成量",
				"等待方调用 wait_for_completion 睡眠",
				"另一方调用 complete 唤醒等待者",
			},
		},
		{
			Name:         "waitqueue",
			BindFuncs:    []string{"init_waitqueue_head", "DECLARE_WAIT_QUEUE_HEAD"},
			TriggerFuncs: []string{"wake_up", "wake_up_interruptible", "wake_up_all"},
			WaitFuncs:    []string{"wait_event", "wait_event_interruptible", "wait_event_timeout"},
			Context:      "wait 在进程上下文，wake_up 可在任何上下文",
			Description:  "等待队列",
			CallChain: []string{
				"wait_event (include/linux/wait.h)",
				"prepare_to_wait",
				"设置进程状态为 TASK_INTERRUPTIBLE",
				"schedule()",
				"--- 另一方 ---",
				"wake_up()",
				"__wake_up_common",
				"唤醒等待进程",
			},
			TypicalUse: "等待条件满足",
			FlowSteps: []string{
				"init_waitqueue_head 初始化等待队列",
				"wait_event 在条件不满足时睡眠",
				"条件变化后 wake_up 唤醒等待进程",
			},
		},
		{
			Name:         "kthread",
			BindFuncs:    []string{"kthread_create", "kthread_run"},
			TriggerFuncs: []string{"wake_up_process"},
			Context:      "进程上下文（可睡眠）",
			Description:  "内核线程",
			CallChain: []string{
				"kthread_create (kernel/kthread.c)",
				"kthread_create_on_node",
				"创建 kthread 结构",
				"唤醒 kthreadd",
				"kthreadd → create_kthread",
				"kernel_thread → kthread",
				"threadfn(data)",
			},
			TypicalUse: "后台服务、周期性任务",
			FlowSteps: []string{
				"kthread_run 创建并唤醒内核线程",
				"kthreadd 代为创建线程结构",
				"线程函数 threadfn 在进程上下文循环执行",
			},
		},
		{
			Name:        "rcu",
			BindFuncs:   []string{"call_rcu", "synchronize_rcu"},
			Context:     "call_rcu 回调在软中断，synchronize_rcu 在进程上下文",
			Description: "Read-Copy-Update 同步机制",
			CallChain: []string{
				"call_rcu (kernel/rcu/tree.c)",
				"注册回调",
				"等待宽限期",
				"rcu_process_callbacks",
				"rcu_do_batch",
				"callback()",
			},
			TypicalUse: "无锁数据结构更新",
			FlowSteps: []string{
				"call_rcu 注册释放回调",
				"等待所有读者离开宽限期",
				"软中断批量执行回调",
			},
		},
		{
			Name:         "notifier",
			BindFuncs:    []string{"blocking_notifier_chain_register", "atomic_notifier_chain_register"},
			TriggerFuncs: []string{"blocking_notifier_call_chain", "atomic_notifier_call_chain"},
			Context:      "blocking 在进程上下文，atomic 在任何上下文",
			Description:  "通知链机制",
			CallChain: []string{
				"blocking_notifier_call_chain (kernel/notifier.c)",
				"down_read(&nh->rwsem)",
				"notifier_call_chain",
				"遍历链表调用每个 notifier_block->notifier_call",
			},
			TypicalUse: "内核子系统事件通知",
			FlowSteps: []string{
				"notifier_chain_register 挂入通知链",
				"事件发生时 call_chain 遍历链表",
				"依次调用每个 notifier_call",
			},
		},
	}
}
